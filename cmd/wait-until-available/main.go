package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Polls the notebook list until the service answers with OK. Meant for deployment scripts that
// need to wait for a freshly started service.
//
// Usage example on the command line:
// > go run main.go -url=http://localhost:8080/api/v1/notebook/ -interval=5s -timeout=2m
func main() {
	url := flag.String("url", "http://localhost:8080/api/v1/notebook/", "the endpoint to poll")
	interval := flag.Duration("interval", 5*time.Second, "the pause between two attempts")
	timeout := flag.Duration("timeout", 0, "give up after this long; 0 waits forever")
	flag.Parse()

	client := &http.Client{Timeout: *interval}
	var totalWaitTime time.Duration
	for {
		res, err := client.Get(*url)
		if err == nil {
			res.Body.Close()
			if res.StatusCode == http.StatusOK {
				fmt.Println(res.Status)
				break
			}
			fmt.Println(res.Status)
		} else {
			fmt.Println(err)
		}
		if *timeout > 0 && totalWaitTime >= *timeout {
			fmt.Printf("Service not available after %s", totalWaitTime)
			fmt.Println()
			os.Exit(1)
		}
		totalWaitTime += *interval
		fmt.Printf("Waiting %s", totalWaitTime)
		fmt.Println()
		time.Sleep(*interval)
	}
}
