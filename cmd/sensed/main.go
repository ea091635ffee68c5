package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"net"
	"net/http"

	"github.com/golang/glog"

	"github.com/robotalks/sense.go/pkg/comm/mqtt"
	"github.com/robotalks/sense.go/pkg/env"
	"github.com/robotalks/sense.go/pkg/framework"
	"github.com/robotalks/sense.go/pkg/telemetry"
)

func init() {
	env.SetupFlags()
}

func main() {
	flag.Parse()

	conf := env.NewConfig()
	conn, closer, err := conf.NewConn()
	if err != nil {
		glog.Exitf("open link: %v", err)
	}
	defer closer.Close()

	q, err := mqtt.NewQueueFromURL(conf.BrokerURL)
	if err != nil {
		glog.Exitf("broker URL: %v", err)
	}
	token := q.Connect()
	token.Wait()
	if err = token.Error(); err != nil {
		glog.Exitf("connect broker: %v", err)
	}
	defer q.Close()

	poller := &telemetry.Poller{
		Device:   conf.ID(),
		Reader:   conn,
		Interval: conf.Interval,
	}
	poller.AddSinks(&telemetry.MQTTSink{Queue: q})

	runner := framework.NewRunner().HandleSignals()

	if conf.WSListen != "" {
		feed := telemetry.NewWSFeed()
		poller.AddSinks(feed)
		ln, err := net.Listen("tcp", conf.WSListen)
		if err != nil {
			glog.Exitf("listen %s: %v", conf.WSListen, err)
		}
		srv := &http.Server{Handler: feed.Handler()}
		runner.Go(framework.NamedRun("wsfeed", framework.RunFunc(func(ctx context.Context) error {
			return framework.RunWithContextCloser(ctx, ln, func() error {
				if err := srv.Serve(ln); err != http.ErrServerClosed {
					return err
				}
				return nil
			})
		})))
	}

	runner.Go(framework.NamedRun("poller", poller))
	if err := runner.Wait(); err != nil {
		glog.Exit(err)
	}
}
