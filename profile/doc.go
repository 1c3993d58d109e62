// Package profile writes pprof profiles of a single CLI run.
//
// Frame conversion is CPU and allocation heavy, so the supported profiles
// are CPU, heap and allocs. Use [Config.RegisterFlags] to add the flags and
// wrap the run with [Profiler.Start] and [Profiler.Stop]:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	p := cfg.NewProfiler()
//	err := p.Start()
//	defer p.Stop()
//
// Users enable profiling with flags like --cpu-profile=cpu.prof.
package profile
