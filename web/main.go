package main

import (
	"flag"
	"log"
	"os"

	"github.com/hhhizzz/ray-tracing-one-week/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	textureDir := flag.String("textures", "resources", "Directory holding image textures")
	flag.Parse()

	webServer := server.NewServer(*port, *textureDir)

	log.Printf("Ray Tracing in One Weekend Web Server")
	log.Printf("Try http://localhost:%d/api/render?scene=CornellBox&width=300&spp=50", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
