package browser

import "github.com/meTur4ik/witsml-studio/logx"

// Option is a browser configuration option.
type Option func(*Browser)

// WithLogger sets the browser's logger.
func WithLogger(logger logx.Logger) Option {
	return func(b *Browser) {
		b.logger = logger
	}
}

// WithBaseURI sets the base address used when requesting the root resource
// set. Defaults to "eml://witsml14".
func WithBaseURI(uri string) Option {
	return func(b *Browser) {
		b.baseURI = uri
	}
}

// WithConfirmer sets the confirmation collaborator consulted before
// destructive actions. Without one, deletes proceed unconfirmed.
func WithConfirmer(c Confirmer) Option {
	return func(b *Browser) {
		b.confirmer = c
	}
}

// WithClipboard sets the clipboard collaborator.
func WithClipboard(c Clipboard) Option {
	return func(b *Browser) {
		b.clipboard = c
	}
}

// WithPanelActivator sets the feature-panel activation collaborator.
func WithPanelActivator(p PanelActivator) Option {
	return func(b *Browser) {
		b.panels = p
	}
}
