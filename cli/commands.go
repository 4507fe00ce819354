package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Check    CheckCmd    `cmd:"" help:"Parse and balance a journal file, reporting the first error found."`
	Register RegisterCmd `cmd:"" help:"Show all postings to an account with a running balance."`
	Balance  BalanceCmd  `cmd:"" help:"Show per-account balance changes by month."`
	Format   FormatCmd   `cmd:"" help:"Rewrite a journal in canonical form with aligned amounts."`
	Watch    WatchCmd    `cmd:"" help:"Re-check a journal file whenever it changes."`
}
