package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/stargazing-dino/drv2605x"
	"github.com/stargazing-dino/drv2605x/drv2605l"
)

func main() {
	dev, err := drv2605x.New(drv2605x.WithMotor(drv2605l.LRA))
	if err != nil {
		log.Fatal(err)
	}
	defer dev.Close()

	fmt.Printf("playing %q\n", drv2605x.StrongClick100)
	if err := dev.PlayEffect(drv2605x.StrongClick100); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("streaming heartbeat, ctrl-c to stop")
	err = dev.PlayCustomHeartbeat(ctx, drv2605x.DefaultHeartbeat())
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
