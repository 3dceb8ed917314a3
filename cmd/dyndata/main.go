// cmd/dyndata/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"dyndata/internal/data"
	"dyndata/internal/jsoncodec"
)

const version = "1.0.0"

// gitCommit can be overridden at build time with -ldflags, matching
// the teacher CLI's own BuildDate/GitCommit convention.
var gitCommit = "unknown"

func main() {
	pretty := flag.Bool("pretty", false, "indent output 4 spaces per level")
	compact := flag.Bool("compact", false, "force single-line output, overriding -pretty")
	forceUCS2 := flag.Bool("ucs2", false, "re-escape every non-ASCII byte as \\uXXXX")
	out := flag.String("out", "", "write output to this path instead of stdout")
	showVersion := flag.Bool("version", false, "print the version and exit")
	mintPointer := flag.Bool("mint-pointer", false, "mint a Pointer handle, print it, and demonstrate it is rejected at JSON encode time")
	buildInfoJSON := flag.Bool("build-info", false, "print build metadata as JSON via the Serializable adapter")
	flag.Parse()

	if *showVersion {
		fmt.Println("dyndata", version)
		return
	}

	if *buildInfoJSON {
		info := buildInfo{Version: version, Commit: gitCommit}
		encoded, err := jsoncodec.Encode(info.ToData(), jsoncodec.Options{Pretty: *pretty && !*compact})
		if err != nil {
			log.Fatalf("dyndata: encode build info: %v", err)
		}
		fmt.Println(string(encoded))
		return
	}

	if *mintPointer {
		demoMintPointer()
		return
	}

	input, err := readInput(flag.Args())
	if err != nil {
		log.Fatalf("dyndata: %v", err)
	}

	doc := jsoncodec.NewDocument(nil)
	if err := doc.Decode(input); err != nil {
		log.Fatalf("dyndata: decode: %v", err)
	}

	opts := jsoncodec.Options{Pretty: *pretty && !*compact, ForceUCS2: *forceUCS2}
	encoded, err := doc.Encode(opts)
	if err != nil {
		log.Fatalf("dyndata: encode: %v", err)
	}

	if err := writeOutput(*out, encoded); err != nil {
		log.Fatalf("dyndata: %v", err)
	}
}

// demoMintPointer mints a fresh Pointer handle via data.NewHandle and
// prints its hex form, then shows that encoding a Pointer to JSON is
// rejected with TypeError (SPEC_FULL.md §4.5's encode-time policy).
func demoMintPointer() {
	p, err := data.NewHandle()
	if err != nil {
		log.Fatalf("dyndata: mint pointer: %v", err)
	}
	fmt.Println("minted pointer:", p.AsString())
	if _, err := jsoncodec.Encode(p, jsoncodec.Options{}); err != nil {
		fmt.Println("encode rejected as expected:", err)
		return
	}
	log.Fatal("dyndata: expected Pointer encode to fail, it did not")
}

// readInput reads from args[0] if given, else stdin, mirroring the
// single-file-or-stdin convention the teacher's subcommands use.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func writeOutput(path string, payload []byte) error {
	payload = append(payload, '\n')
	if path == "" {
		_, err := os.Stdout.Write(payload)
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}
