// Command keypair generates one Curve25519 encryption keypair and prints it
// in base-85, or saves it to a file when a path is given. Handy for setting
// up test clients against a freshly provisioned server.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/darkwyrm/b85"

	"github.com/dmitrijs2005/anselusd/internal/cryptox"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Printf("Usage: %s [filename]\n", filepath.Base(os.Args[0]))
		os.Exit(0)
	}

	public, private := cryptox.GenerateBoxKeypair()
	output := fmt.Sprintf("Keypair type: encryption\npublic: %s\nprivate: %s\n",
		b85.Encode(public), b85.Encode(private))

	if len(os.Args) == 1 {
		fmt.Print(output)
		return
	}

	filename := os.Args[1]
	if _, err := os.Stat(filename); err == nil {
		fmt.Printf("%s exists. Overwrite? [y/N]: ", filename)
		response, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		response = strings.TrimSpace(response)
		if response == "" || !strings.EqualFold(response[:1], "y") {
			return
		}
	}

	if err := os.WriteFile(filename, []byte(output), 0o600); err != nil {
		fmt.Printf("Unable to save %s: %s\n", filename, err)
		os.Exit(1)
	}
}
