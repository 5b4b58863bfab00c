package cli

import (
	"github.com/spf13/pflag"
)

// flagAliases maps option names of the original fs2dt.py script to their
// current names so existing invocations keep working.
var flagAliases = map[string]string{
	"fspotdb": "catalog",
	"test":    "dry-run",
}

// normalizeFlagAliases is a pflag normalize function applying flagAliases.
func normalizeFlagAliases(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if alias, ok := flagAliases[name]; ok {
		name = alias
	}
	return pflag.NormalizedName(name)
}
