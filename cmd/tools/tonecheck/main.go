// Command tonecheck runs a reply through tone detection and prosody
// shaping without starting the server. Useful for tuning the rule table
// against real model output.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mirelabs/zelda/backend/internal/analysis/tone"
	"github.com/mirelabs/zelda/backend/internal/avatar"
)

func main() {
	text := flag.String("text", "", "reply text to analyze (reads stdin when empty)")
	asJSON := flag.Bool("json", false, "emit the result as JSON")
	flag.Parse()

	input := strings.TrimSpace(*text)
	if input == "" {
		data, err := readStdin()
		if err != nil {
			log.Fatalf("failed to read stdin: %v", err)
		}
		input = strings.TrimSpace(data)
	}
	if input == "" {
		flag.Usage()
		log.Fatal("provide reply text via -text or stdin")
	}

	label := tone.Detect(input)
	shaped := tone.Shape(input, label)
	clip := avatar.ClipFor(string(label))

	if *asJSON {
		out := map[string]string{
			"tone":   string(label),
			"clip":   clip,
			"shaped": shaped,
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(out); err != nil {
			log.Fatalf("failed to encode result: %v", err)
		}
		return
	}

	fmt.Printf("tone: %s\n", label)
	fmt.Printf("clip: %s\n", clip)
	fmt.Println("shaped:")
	fmt.Println(shaped)
}

func readStdin() (string, error) {
	var builder strings.Builder
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		builder.WriteString(scanner.Text())
		builder.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return builder.String(), nil
}
