// Command sidefxd runs the engine as a long-lived gRPC daemon, for build
// pipelines that would otherwise pay process-spawn cost per module.
package main

import (
	"fmt"
	"log"
	"net"
	"os"

	"github.com/sidefxlint/sidefxlint/internal/rpc"
)

func main() {
	addr := ":7453"
	if len(os.Args) > 1 {
		addr = os.Args[1]
	}

	server, err := rpc.NewServer()
	if err != nil {
		log.Fatalf("sidefxd: building server: %v", err)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("sidefxd: listening on %s: %v", addr, err)
	}

	fmt.Printf("sidefxd: serving Analyzer on %s\n", addr)
	if err := server.Serve(lis); err != nil {
		log.Fatalf("sidefxd: %v", err)
	}
}
