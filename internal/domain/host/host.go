// Package host integrates the widget with its embedding ERP environment:
// full-screen launch inside the host shell and display-image URL resolution
// against the host's image endpoints.
package host

import (
	"context"
	"fmt"
	"strings"

	"vitrine/internal/core/apperror"
	"vitrine/pkg/logger"
)

// imagePathFormat is the host's product image endpoint.
const imagePathFormat = "%s/mge/Produto@IMAGEM@CODPROD=%d.dbimage"

// ImageResolver builds product image URLs with a fallback host for when the
// primary host does not serve the image.
type ImageResolver struct {
	primaryBase  string
	fallbackBase string
}

// NewImageResolver creates a resolver over the two image hosts.
func NewImageResolver(primaryBase, fallbackBase string) ImageResolver {
	return ImageResolver{
		primaryBase:  strings.TrimRight(primaryBase, "/"),
		fallbackBase: strings.TrimRight(fallbackBase, "/"),
	}
}

// Resolve returns the primary and fallback image URLs for a product code.
func (r ImageResolver) Resolve(code int) (string, string) {
	return fmt.Sprintf(imagePathFormat, r.primaryBase, code),
		fmt.Sprintf(imagePathFormat, r.fallbackBase, code)
}

// Probe is what the client observed about its environment: whether the host
// shell's landmark element was found on the embedding page.
type Probe struct {
	Embedded bool   `json:"embedded"`
	Landmark string `json:"landmark,omitempty"`
}

// FullScreenConfig is handed back to the embedding page to take over the
// host's content frame.
type FullScreenConfig struct {
	InstanceID  string `json:"instanceId"`
	InitialPage string `json:"initialPage"`
}

// Service validates host-only actions.
type Service struct {
	instanceID  string
	initialPage string
	log         *logger.Logger
}

// NewService creates a host integration service. instanceID identifies this
// widget deployment inside the host shell; initialPage is the entry page
// loaded into the replaced frame.
func NewService(instanceID, initialPage string, log *logger.Logger) *Service {
	return &Service{
		instanceID:  instanceID,
		initialPage: initialPage,
		log:         log.WithComponent("host.service"),
	}
}

// LaunchFullScreen resolves the frame-replacement config for a full-screen
// launch. Outside the host environment the action degrades to a warning: the
// caller gets an environment mismatch, never a hard failure, and the widget
// keeps running embedded.
func (s *Service) LaunchFullScreen(ctx context.Context, probe Probe) (FullScreenConfig, error) {
	if !probe.Embedded {
		s.log.WithContext(ctx).Warnw("full-screen launch outside host environment",
			"landmark", probe.Landmark,
		)
		return FullScreenConfig{}, apperror.NewEnvironmentMismatch("full-screen launch")
	}

	cfg := FullScreenConfig{
		InstanceID:  s.instanceID,
		InitialPage: s.initialPage,
	}
	s.log.WithContext(ctx).Infow("full-screen launch", "instance_id", cfg.InstanceID)
	return cfg, nil
}
