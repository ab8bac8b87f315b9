package flags

import "github.com/spf13/cobra"

const (
	// RemoteFlagName exposes the shared remote flag name.
	RemoteFlagName = "remote"
	// RemoteFlagUsage describes the shared remote flag purpose.
	RemoteFlagUsage = "Remote that receives the pushed branch"
)

// EnsureRemoteFlag guarantees the shared remote flag is available on the command.
func EnsureRemoteFlag(command *cobra.Command, defaultValue string, usage string) {
	if command == nil {
		return
	}
	if len(usage) == 0 {
		usage = RemoteFlagUsage
	}

	persistentSet := command.PersistentFlags()
	if persistentSet.Lookup(RemoteFlagName) == nil {
		persistentSet.String(RemoteFlagName, defaultValue, usage)
	}

	if command.Flags().Lookup(RemoteFlagName) == nil {
		if remoteFlag := persistentSet.Lookup(RemoteFlagName); remoteFlag != nil {
			command.Flags().AddFlag(remoteFlag)
		}
	}
}

// RemoteName reads the remote flag, falling back to the provided default when the flag is absent or blank.
func RemoteName(command *cobra.Command, fallback string) string {
	if command == nil {
		return fallback
	}
	remoteFlag := command.Flags().Lookup(RemoteFlagName)
	if remoteFlag == nil {
		return fallback
	}
	if !remoteFlag.Changed {
		return fallback
	}
	if len(remoteFlag.Value.String()) == 0 {
		return fallback
	}
	return remoteFlag.Value.String()
}
