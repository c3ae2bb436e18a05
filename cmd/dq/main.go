package main

import "github.com/nardogod/diaryquest/cmd/dq/root"

func main() {
	root.Execute()
}
