package main

import (
	"context"
	"log"
	"os"
	"time"

	schlep "github.com/schlep-engine/go-sdk"
	"github.com/schlep-engine/go-sdk/api"
)

func main() {
	client, err := schlep.NewClientFromEnv(&schlep.Options{
		RequestTimeout: 30 * time.Second,
		MaxRetries:     2,
	})
	if err != nil {
		log.Fatalf("client setup failed: %v", err)
	}

	ctx := context.Background()

	// Namespaced API: process a CSV and wait on the job.
	csv, err := os.ReadFile("data.csv")
	if err != nil {
		log.Fatalf("read data.csv: %v", err)
	}
	job, err := client.Data().ProcessFile(ctx, csv, "csv")
	if err != nil {
		log.Fatalf("process file: %v", err)
	}
	log.Printf("processing job %s is %s", job.JobID, job.Status)

	health, err := client.Monitoring().GetHealth(ctx)
	if err != nil {
		log.Fatalf("health check: %v", err)
	}
	log.Printf("platform is %s (version %s)", health.Status, health.Version)

	// Legacy flat API: same executor, older endpoints.
	status, err := client.Status(ctx, job.JobID)
	if err != nil {
		log.Fatalf("job status: %v", err)
	}
	log.Printf("job %s progress: %.0f%%", status.JobID, status.Progress)

	// Live events for this job.
	stream, err := client.Stream(ctx, api.StreamConfig{
		EventTypes: []string{"job.progress", "job.completed"},
		Filters:    map[string]interface{}{"job_id": job.JobID},
	})
	if err != nil {
		log.Fatalf("open stream: %v", err)
	}
	defer stream.Close()

	for event := range stream.Events() {
		log.Printf("event %s at %s: %v", event.EventType, event.Timestamp, event.Data)
		if event.EventType == "job.completed" {
			break
		}
	}
	if err := stream.Err(); err != nil {
		log.Fatalf("stream ended: %v", err)
	}
}
