package main

import "seekdomains/internal/cli"

func main() { cli.Execute() }
