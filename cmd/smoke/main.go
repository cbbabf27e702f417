// Command smoke posts a scripted sequence of presentation events to a running
// relay and prints per-request results. Useful for manual verification against
// a configured broker and document store.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"
)

const defaultTimeout = 10 * time.Second

type upload struct {
	Event string `json:"event,omitempty"`
	Type  string `json:"type,omitempty"`
	Data  any    `json:"data"`
}

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:9080", "Base URL of the relay")
		team    = flag.String("team", "T1", "Team name used for the sample submission")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	client := &http.Client{Timeout: *timeout}

	script := []upload{
		{Event: "presentationStarting", Data: map[string]any{"team": *team}},
		{Event: "presentationStarted", Data: map[string]any{"team": *team}},
		{Event: "timeSync", Data: map[string]any{"remaining": 300}},
		{Event: "evaluationForm", Data: map[string]any{"team": *team}},
		{Event: "evaluationSubmitted", Data: map[string]any{
			"team":      *team,
			"evaluator": "SMOKE-0001",
			"evaluation": map[string]any{
				"ratings":  map[string]any{"innovation": 8, "delivery": 7},
				"feedback": "smoke test submission",
			},
		}},
		{Event: "presentationEnded", Data: map[string]any{"team": *team}},
		{Event: "presentationReset", Data: map[string]any{}},
	}

	failures := 0
	for _, u := range script {
		status, err := post(client, *baseURL+"/api/upload", u)
		label := u.Event
		if label == "" {
			label = "bulk:" + u.Type
		}
		if err != nil {
			fmt.Printf("FAIL %-22s %v\n", label, err)
			failures++
			continue
		}
		fmt.Printf("%-4d %-22s\n", status, label)
		if status != http.StatusOK {
			failures++
		}
	}

	if status, err := getStatus(client, *baseURL+"/feedbacks"); err != nil || status != http.StatusOK {
		fmt.Printf("FAIL GET /feedbacks status=%d err=%v\n", status, err)
		failures++
	} else {
		fmt.Printf("%-4d GET /feedbacks\n", status)
	}

	if failures > 0 {
		fmt.Printf("%d request(s) failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("all requests succeeded")
}

func post(client *http.Client, url string, u upload) (int, error) {
	body, err := json.Marshal(u)
	if err != nil {
		return 0, err
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode, nil
}

func getStatus(client *http.Client, url string) (int, error) {
	resp, err := client.Get(url)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode, nil
}
