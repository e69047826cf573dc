package main

import (
	"fmt"

	"github.com/knadh/koanf/providers/file"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// traceKeys are the tracers of this module. Tracer levels are configured as
// "tracelevel.<key>".
var traceKeys = []string{
	"root",
	"ptgen.cli",
	"ptgen.forest",
	"ptgen.grammar",
	"ptgen.render",
	"ptgen.scanner",
}

// legacyTraceKeys are read by gconf for the global tracers of package gtrace.
// We do not use them, but they will chat at level Info if left unset.
var legacyTraceKeys = []string{
	"tracinginterpreter", "tracingcommands", "tracingequations", "tracingsyntax",
	"tracinggraphics", "tracingscripting", "tracingcore", "tracingengine",
}

type configSettings struct {
	traceLevel       string
	traceChanged     bool
	configFile       string
	panicOnViolation bool
	panicChanged     bool
}

// setupConfig creates the global configuration and sets up tracing.
// Values from a configuration file override the defaults, and flags given
// on the command line override values from a file.
func setupConfig(settings configSettings) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), true)
	conf := koanfadapter.New(nil, "", nil)
	conf.Set("tracing.adapter", "go")
	for _, key := range traceKeys {
		conf.Set("tracelevel."+key, settings.traceLevel)
	}
	for _, key := range legacyTraceKeys {
		conf.Set(key, "Error")
	}
	conf.Set("panic-on-span-violation", settings.panicOnViolation)
	if settings.configFile != "" {
		if err := conf.Koanf().Load(file.Provider(settings.configFile), koanfadapter.Parser()); err != nil {
			return fmt.Errorf("loading configuration %s: %w", settings.configFile, err)
		}
	}
	if settings.traceChanged {
		for _, key := range traceKeys {
			conf.Set("tracelevel."+key, settings.traceLevel)
		}
	}
	if settings.panicChanged {
		conf.Set("panic-on-span-violation", settings.panicOnViolation)
	}
	gconf.Initialize(conf)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("trace level is %s", conf.GetString("tracelevel.ptgen.cli"))
	return nil
}
