package profile

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiling configuration.
type Flags struct {
	CPUProfile     string
	HeapProfile    string
	AllocsProfile  string
	MemProfileRate string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds profiling output paths and the memory sampling rate. A
// zero-value Config has all profiles disabled.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewProfiler] to create a [Profiler].
type Config struct {
	Flags Flags

	// Output paths (empty = disabled).
	CPUProfile    string
	HeapProfile   string
	AllocsProfile string

	// MemProfileRate is applied to [runtime.MemProfileRate] when it is
	// positive and a memory profile is enabled.
	MemProfileRate int
}

// NewConfig creates a new [Config] with default flag names and all profiles
// disabled.
func NewConfig() *Config {
	return Flags{
		CPUProfile:     "cpu-profile",
		HeapProfile:    "heap-profile",
		AllocsProfile:  "allocs-profile",
		MemProfileRate: "mem-profile-rate",
	}.NewConfig()
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPUProfile, c.Flags.CPUProfile, "", "write CPU profile to file")
	flags.StringVar(&c.HeapProfile, c.Flags.HeapProfile, "", "write heap profile to file")
	flags.StringVar(&c.AllocsProfile, c.Flags.AllocsProfile, "", "write allocs profile to file")
	flags.IntVar(&c.MemProfileRate, c.Flags.MemProfileRate, 524288, "memory profile rate (bytes per sample)")
}

// RegisterCompletions registers shell completions for profile flags on cmd.
// Path flags keep default file completion.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.MemProfileRate,
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		})
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.MemProfileRate, err)
	}

	return nil
}

// Enabled reports whether any profile output is configured.
func (c *Config) Enabled() bool {
	return c.CPUProfile != "" || c.HeapProfile != "" || c.AllocsProfile != ""
}

// NewProfiler creates a new [Profiler] using this [Config].
func (c *Config) NewProfiler() *Profiler {
	return &Profiler{
		Config: *c,
	}
}
