package commands

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
)

// ServeCommand starts an HTTP server to preview a fixed build directory
func ServeCommand() {
	serveFlags := flag.NewFlagSet("serve", flag.ExitOnError)
	dir := serveFlags.String("dir", "", "Build directory to serve")
	port := serveFlags.Int("port", 8080, "Port for HTTP server")
	serveFlags.Parse(os.Args[2:])

	if *dir == "" {
		fmt.Println("Please provide a build directory with -dir flag.")
		serveFlags.Usage()
		os.Exit(1)
	}

	if _, err := os.Stat(*dir); os.IsNotExist(err) {
		fmt.Printf("%s not found.\n", *dir)
		os.Exit(1)
	}

	http.Handle("/", http.FileServer(http.Dir(*dir)))

	fmt.Printf("Serving %s on http://localhost:%d\n", *dir, *port)
	fmt.Println("Press Ctrl+C to stop the server")
	log.Fatal(http.ListenAndServe(":"+strconv.Itoa(*port), nil))
}
