package host

import (
	"context"
	"testing"

	"vitrine/internal/core/apperror"
	"vitrine/pkg/logger"
)

func TestImageResolver_Resolve(t *testing.T) {
	r := NewImageResolver("https://erp.example.com/", "https://mirror.example.com")

	primary, fallback := r.Resolve(1234)
	wantPrimary := "https://erp.example.com/mge/Produto@IMAGEM@CODPROD=1234.dbimage"
	wantFallback := "https://mirror.example.com/mge/Produto@IMAGEM@CODPROD=1234.dbimage"

	if primary != wantPrimary {
		t.Errorf("primary URL mismatch\nwant: %s\ngot:  %s", wantPrimary, primary)
	}
	if fallback != wantFallback {
		t.Errorf("fallback URL mismatch\nwant: %s\ngot:  %s", wantFallback, fallback)
	}
}

func TestService_LaunchFullScreen(t *testing.T) {
	svc := NewService("vitrine-01", "index.html", logger.Default())

	cfg, err := svc.LaunchFullScreen(context.Background(), Probe{Embedded: true, Landmark: ".Taskbar-container"})
	if err != nil {
		t.Fatalf("launch inside host failed: %v", err)
	}
	if cfg.InstanceID != "vitrine-01" || cfg.InitialPage != "index.html" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestService_LaunchFullScreenOutsideHost(t *testing.T) {
	svc := NewService("vitrine-01", "index.html", logger.Default())

	_, err := svc.LaunchFullScreen(context.Background(), Probe{Embedded: false})
	if err == nil {
		t.Fatal("launch outside host must warn")
	}

	appErr, ok := apperror.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != apperror.CodeEnvironmentMismatch {
		t.Errorf("code = %s, want %s", appErr.Code, apperror.CodeEnvironmentMismatch)
	}
	// Warning semantics: surfaced with a success status, never a 5xx.
	if appErr.HTTPStatus != 200 {
		t.Errorf("status = %d, want 200", appErr.HTTPStatus)
	}
}
