package main

import (
	"flag"
	"log"
	"os"

	"github.com/robotalks/sense.go/pkg/comm/mqtt"
)

//go-build: CGO_ENABLED=0

var (
	brokerURL = "mqtt://localhost:1883/sense/"
)

func init() {
	if val := os.Getenv("SENSE_BROKER_URL"); val != "" {
		brokerURL = val
	}
	flag.StringVar(&brokerURL, "broker", brokerURL, "MQTT broker URL.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(brokerURL)
	if err != nil {
		log.Fatalln(err)
	}

	q.Sub("#", mqtt.Handler(func(topic string, payload []byte) {
		log.Printf("%s: %s", topic, string(payload))
	}))

	token := q.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		log.Fatalln(err)
	}

	select {}
}
