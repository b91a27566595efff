package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

var cli struct {
	Migrate MigrateCmd `cmd:"" help:"Apply pending database migrations."`
	Export  ExportCmd  `cmd:"" help:"Write a month's payments as CSV."`
	Summary SummaryCmd `cmd:"" help:"Print a month's totals per currency."`
	Pay     PayCmd     `cmd:"" help:"Record the amount paid against an expense in a month."`
	Payday  PaydayCmd  `cmd:"" help:"Manage paydays."`
}

func main() {
	_ = godotenv.Load()

	ctx := kong.Parse(&cli,
		kong.Name("paycalctl"),
		kong.Description("Administer the payment calendar from the command line."),
		kong.UsageOnError(),
	)

	a := &app{}
	defer a.Close()

	err := ctx.Run(a)
	ctx.FatalIfErrorf(err)
}
