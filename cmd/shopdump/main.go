// Command shopdump prints the debug dump of a running game.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/coffee-shop/api"
	"github.com/beka-birhanu/coffee-shop/config"
	logger "github.com/beka-birhanu/vinom-common/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:50051", "debug gRPC address")
	watch := flag.Bool("watch", false, "stream every dump instead of printing the latest one")
	flag.Parse()

	appLogger, _ := logger.New("SHOPDUMP", config.ColorGreen, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Connecting to %s: %v", *addr, err))
		os.Exit(1)
	}
	defer conn.Close()
	client := api.NewDebugClient(conn)

	printDump := func(st *structpb.Struct) error {
		out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(st)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	if *watch {
		if err := client.Watch(ctx, printDump); err != nil && ctx.Err() == nil {
			appLogger.Error(fmt.Sprintf("Watching dumps: %v", err))
			os.Exit(1)
		}
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	st, err := client.Snapshot(callCtx)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Fetching dump: %v", err))
		os.Exit(1)
	}
	if err := printDump(st); err != nil {
		appLogger.Error(fmt.Sprintf("Formatting dump: %v", err))
		os.Exit(1)
	}
}
