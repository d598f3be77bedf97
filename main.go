package main

import "github.com/KaramelBytes/scoretrends/cmd"

func main() {
	cmd.Execute()
}
