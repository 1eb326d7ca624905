package main

import (
	"github.com/bornholm/jobsearch/internal/command"
	"github.com/bornholm/jobsearch/internal/command/find"
	"github.com/bornholm/jobsearch/internal/command/serve"
)

var version = "dev"

func main() {
	command.Main(
		"jobsearch",
		version,
		"Search job postings through the Google Jobs engine",
		serve.Serve(),
		find.Find(),
	)
}
