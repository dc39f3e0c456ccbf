package godism

// This file contains the Windows optional feature operations.

import (
	"github.com/ubuntu/decorate"
)

// EnableFeature enables an optional feature in the session's image. If its
// payload was removed, sources to restore it from can be supplied with
// WithSources, or fetched from Windows Update unless LimitAccess forbids it.
//
// A non-nil error with errors.Is(err, ErrRebootRequired) true means the
// feature is enabled pending a reboot.
//
// Honoured options: WithPackageName, WithPackagePath, WithSources,
// LimitAccess, EnableAll, WithProgress.
func (s *Session) EnableFeature(featureName string, opts ...Option) (err error) {
	defer decorate.OnError(&err, "could not enable feature %q in %s", featureName, s)

	var options options
	for _, o := range opts {
		o(&options)
	}

	identifier, kind := options.packageIdentifier()

	bridge, err := bridgeFor(options.progress)
	if err != nil {
		return err
	}
	defer bridge.Close()

	return s.backend.EnableFeature(s.handle, featureName, identifier, kind, options.limitAccess, options.sourcePaths, options.enableAll, bridge)
}

// DisableFeature disables an optional feature in the session's image.
// RemovePayload also deletes its files, so re-enabling will need a source.
//
// Honoured options: WithPackageName, RemovePayload, WithProgress.
func (s *Session) DisableFeature(featureName string, opts ...Option) (err error) {
	defer decorate.OnError(&err, "could not disable feature %q in %s", featureName, s)

	var options options
	for _, o := range opts {
		o(&options)
	}

	bridge, err := bridgeFor(options.progress)
	if err != nil {
		return err
	}
	defer bridge.Close()

	return s.backend.DisableFeature(s.handle, featureName, options.packageName, options.removePayload, bridge)
}

// Features lists the optional features of the session's image and their
// states.
//
// Honoured options: WithPackageName, WithPackagePath.
func (s *Session) Features(opts ...Option) (features []Feature, err error) {
	defer decorate.OnError(&err, "could not list the features of %s", s)

	var options options
	for _, o := range opts {
		o(&options)
	}

	identifier, kind := options.packageIdentifier()

	return s.backend.Features(s.handle, identifier, kind)
}

// FeatureInfo describes a single optional feature of the session's image.
//
// Honoured options: WithPackageName, WithPackagePath.
func (s *Session) FeatureInfo(featureName string, opts ...Option) (feature FeatureInfo, err error) {
	defer decorate.OnError(&err, "could not describe feature %q in %s", featureName, s)

	var options options
	for _, o := range opts {
		o(&options)
	}

	identifier, kind := options.packageIdentifier()

	return s.backend.FeatureInfo(s.handle, featureName, identifier, kind)
}

// FeatureParents lists the features that the given feature depends on.
//
// Honoured options: WithPackageName, WithPackagePath.
func (s *Session) FeatureParents(featureName string, opts ...Option) (parents []Feature, err error) {
	defer decorate.OnError(&err, "could not list the parents of feature %q in %s", featureName, s)

	var options options
	for _, o := range opts {
		o(&options)
	}

	identifier, kind := options.packageIdentifier()

	return s.backend.FeatureParents(s.handle, featureName, identifier, kind)
}
