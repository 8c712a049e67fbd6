package main

import "github.com/kevmo314/go-ov534/cmd/ov534/cmd"

func main() {
	cmd.Execute()
}
