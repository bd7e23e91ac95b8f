package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: worker export [outDir] [systemCode]")
	}

	switch os.Args[1] {
	case "export":
		RunExport(os.Args[2:])
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}
