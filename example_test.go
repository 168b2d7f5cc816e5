package adr_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/adr"
)

// Example_basic initialises a project, records a decision that supersedes
// the first one and lists the links written back into the first record.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "adr-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	svc, err := adr.Init(tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	spec, err := adr.ParseLink("1:supersedes:Superseded by")
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	rec, err := svc.CreateRecord(ctx, "Use decision records v2", []adr.Link{spec})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(rec.File)

	links, err := svc.Links(ctx, 1)
	if err != nil {
		log.Fatal(err)
	}
	for _, l := range links {
		fmt.Printf("%s -> %s\n", l.Comment, l.File)
	}
	// Output:
	// 0002-use-decision-records-v2.md
	// Superseded by -> 0002-use-decision-records-v2.md
}
