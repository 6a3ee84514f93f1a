package main

import (
	"context"
	"errors"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"circlesim/config"
	"circlesim/game"
	"circlesim/network"
	"circlesim/room"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	seed := cfg.RandSeed()
	world := game.NewWorld(cfg.NumBodies, cfg.Params(), rand.New(rand.NewPCG(seed, seed)))
	r := room.New(world, room.Options{
		TickHz:      cfg.TickHz,
		BroadcastHz: cfg.BroadcastHz,
	})
	go r.Run()
	defer r.Stop()

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: network.NewServer(r, cfg.SendBuffer).Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("listening on %s (ws endpoint: /ws), %d bodies at %d Hz", cfg.Addr, cfg.NumBodies, cfg.TickHz)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("shutdown:", err)
	}
}
