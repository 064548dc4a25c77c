// Package app implements the application layer for shlibdeps.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/shlibdeps/internal/build"
	"go.trai.ch/shlibdeps/internal/core/domain"
	"go.trai.ch/shlibdeps/internal/core/ports"
	"go.trai.ch/shlibdeps/internal/engine/libindex"
	"go.trai.ch/shlibdeps/internal/engine/resolve"
	"go.trai.ch/shlibdeps/internal/engine/walker"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	inspector    ports.BinaryInspector
	indexBuilder *libindex.Builder
	walker       *walker.Walker
	resolver     *resolve.Resolver
	digester     ports.Digester
	emitter      ports.ManifestEmitter
	logger       ports.Logger
	tracer       ports.Tracer

	stdout io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	inspector ports.BinaryInspector,
	indexBuilder *libindex.Builder,
	libWalker *walker.Walker,
	resolver *resolve.Resolver,
	digester ports.Digester,
	emitter ports.ManifestEmitter,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		inspector:    inspector,
		indexBuilder: indexBuilder,
		walker:       libWalker,
		resolver:     resolver,
		digester:     digester,
		emitter:      emitter,
		logger:       log,
		tracer:       tracer,
		stdout:       os.Stdout,
	}
}

// SetStdout overrides the default manifest destination. Used for
// testing.
func (a *App) SetStdout(w io.Writer) {
	a.stdout = w
}

// GenerateOptions carries the command line arguments of a generate run.
type GenerateOptions struct {
	// Inputs are the root executables to analyze.
	Inputs []string

	// ConfigPath names an explicit configuration file. Empty means
	// discovery in the working directory.
	ConfigPath string

	// Settings from flags, overlaid on the configuration file.
	Settings domain.Settings
}

type classifiedInput struct {
	path string
	arch domain.Architecture
}

// Generate computes the dependency manifest for the given executables
// and writes it to the configured destination.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	ctx, span := a.tracer.Start(ctx, "generate")
	defer span.End()

	fileSettings, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		err = zerr.Wrap(err, "failed to load configuration")
		span.RecordError(err)
		return err
	}
	settings := fileSettings.Merge(opts.Settings)
	span.SetAttribute("inputs", len(opts.Inputs))

	// Fail before any analysis if the destination cannot be written.
	out, closeOut, err := a.openOutput(settings.Output)
	if err != nil {
		span.RecordError(err)
		return err
	}
	defer closeOut()

	inputs, err := a.classifyInputs(opts.Inputs)
	if err != nil {
		span.RecordError(err)
		return err
	}

	manifest, err := a.buildManifest(ctx, inputs, settings)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err := a.emitter.Emit(out, manifest); err != nil {
		span.RecordError(err)
		return err
	}

	if n := len(manifest.Warnings); n > 0 {
		a.logger.Warn(fmt.Sprintf("manifest complete with %d warnings", n))
	} else {
		a.logger.Info("manifest complete")
	}
	return nil
}

func (a *App) openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return a.stdout, func() {}, nil
	}

	f, err := os.Create(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(domain.ErrOutputNotWritable, err.Error()), "path", path)
	}
	return f, func() { _ = f.Close() }, nil
}

func (a *App) classifyInputs(paths []string) ([]classifiedInput, error) {
	inputs := make([]classifiedInput, 0, len(paths))

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInputNotFound, "input does not exist"), "path", path)
		}

		signature, err := a.inspector.Signature(path)
		if err != nil {
			return nil, err
		}

		arch := domain.ClassifySignature(signature)
		if arch == domain.ArchUnknown {
			err := zerr.Wrap(domain.ErrUnknownArchitecture, "cannot determine architecture")
			return nil, zerr.With(zerr.With(err, "path", path), "signature", signature)
		}

		a.logger.Debug(fmt.Sprintf("classified %s as %s", path, arch))
		inputs = append(inputs, classifiedInput{path: path, arch: arch})
	}

	return inputs, nil
}

func (a *App) buildManifest(ctx context.Context, inputs []classifiedInput, settings domain.Settings) (*domain.Manifest, error) {
	var warnings []string

	custom, indexWarnings := a.buildIndex(ctx, settings.LibraryPaths)
	warnings = append(warnings, indexWarnings...)

	res := domain.NewResolution(custom)
	for _, input := range inputs {
		walkWarnings, err := a.walkInput(ctx, res, input)
		if err != nil {
			return nil, err
		}
		warnings = append(warnings, walkWarnings...)
	}

	packages, resolveWarnings, err := a.resolvePackages(ctx, res, settings)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, resolveWarnings...)

	manifest := &domain.Manifest{
		FormatVersion: domain.ManifestFormatVersion,
		Tool:          build.Version,
		Warnings:      warnings,
	}

	for _, input := range inputs {
		digest, err := a.digester.Digest(input.path)
		if err != nil {
			return nil, err
		}
		manifest.Inputs = append(manifest.Inputs, domain.InputDigest{Path: input.path, Digest: digest})
	}

	for _, pkg := range domain.SortedPackages(packages) {
		manifest.Entries = append(manifest.Entries, domain.ManifestEntry{
			Name:       pkg.Key(),
			MinVersion: pkg.MinVersion,
		})
	}

	return manifest, nil
}

func (a *App) buildIndex(ctx context.Context, libraryPaths []string) (*domain.CustomIndex, []string) {
	ctx, span := a.tracer.Start(ctx, "libindex")
	defer span.End()

	custom, warnings := a.indexBuilder.Build(ctx, libraryPaths)
	span.SetAttribute("libraries", custom.Len())
	return custom, warnings
}

func (a *App) walkInput(ctx context.Context, res *domain.Resolution, input classifiedInput) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, "walk")
	defer span.End()
	span.SetAttribute("input", input.path)
	span.SetAttribute("architecture", input.arch.String())

	warnings, err := a.walker.Walk(ctx, res, input.arch, input.path)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to walk dependencies")
	}
	return warnings, nil
}

func (a *App) resolvePackages(ctx context.Context, res *domain.Resolution, settings domain.Settings) (map[string]*domain.Package, []string, error) {
	ctx, span := a.tracer.Start(ctx, "resolve")
	defer span.End()

	var warnings []string
	packages := make(map[string]*domain.Package)

	for _, arch := range res.Architectures() {
		archPackages, archWarnings, err := a.resolver.Resolve(ctx, res, arch)
		if err != nil {
			span.RecordError(err)
			return nil, nil, zerr.Wrap(err, "failed to resolve packages")
		}
		warnings = append(warnings, archWarnings...)

		for key, pkg := range archPackages {
			packages[key] = pkg
		}
	}

	if settings.Versions {
		versionWarnings, err := a.resolver.AnnotateVersions(ctx, packages)
		if err != nil {
			span.RecordError(err)
			return nil, nil, zerr.Wrap(err, "failed to look up package versions")
		}
		warnings = append(warnings, versionWarnings...)
	}

	for _, pkg := range domain.SortedPackages(packages) {
		if settings.Excluded(pkg.Name) {
			delete(packages, pkg.Key())
			warnings = append(warnings, fmt.Sprintf("excluded package %s", pkg.Key()))
		}
	}

	span.SetAttribute("packages", len(packages))
	return packages, warnings, nil
}
