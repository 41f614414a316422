package main

import (
	"crypto/rand"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"

	"qrstudio/internal/devserver"
	"qrstudio/internal/logging"
)

func main() {

	addr := flag.String("a", ":8000", "address to listen on")
	uploadDir := flag.String("u", "", "upload directory (default: a temp dir)")
	flag.Parse()

	dir := *uploadDir
	if dir == "" {
		var err error
		dir, err = os.MkdirTemp("", "qrstudio-uploads-*")
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewDefault(slog.LevelInfo)
	s := devserver.New(dir, secret, logger)

	log.Printf("stub backend listening on %s, uploads in %s", *addr, dir)
	log.Fatal(http.ListenAndServe(*addr, s.Router()))

}
