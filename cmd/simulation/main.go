// FILE: cmd/simulation/main.go
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const baseURL = "http://localhost:3000/api"

// Simplified DTOs for the script
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type signupData struct {
	Token       string `json:"token"`
	RecoveryKey string `json:"recovery_key"`
}

type ticketData struct {
	Id string `json:"id"`
}

func main() {
	fmt.Println("=== Dashboard API Simulation Client ===")

	email := fmt.Sprintf("sim-%d@example.com", time.Now().Unix())
	fmt.Printf("Signing up as: %s\n", email)

	var signup signupData
	if err := call("POST", "/auth/signup", "", map[string]string{
		"email":     email,
		"full_name": "Simulation User",
		"password":  "simulation-pass",
	}, &signup); err != nil {
		log.Fatalf("Signup failed: %v", err)
	}
	fmt.Printf("Recovery key issued: %s\n", signup.RecoveryKey)

	token := signup.Token

	var profile json.RawMessage
	if err := call("GET", "/user/profile", token, nil, &profile); err != nil {
		log.Fatalf("Profile fetch failed: %v", err)
	}
	fmt.Printf("Profile: %s\n", profile)

	var plans json.RawMessage
	if err := call("GET", "/billing/plans", "", nil, &plans); err != nil {
		log.Fatalf("Plan catalog failed: %v", err)
	}
	fmt.Printf("Plans: %s\n", plans)

	var ticket ticketData
	if err := call("POST", "/tickets", token, map[string]string{
		"subject":  "Simulation smoke ticket",
		"category": "General",
		"message":  "Opened by the simulation client.",
	}, &ticket); err != nil {
		log.Fatalf("Ticket open failed: %v", err)
	}
	fmt.Printf("Ticket opened: %s\n", ticket.Id)

	var usage json.RawMessage
	if err := call("GET", "/user/usage", token, nil, &usage); err != nil {
		log.Fatalf("Usage fetch failed: %v", err)
	}
	fmt.Printf("Usage: %s\n", usage)

	fmt.Println("\nAll smoke calls passed.")
}

func call(method, path, token string, body interface{}, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+path, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("status %s, body %s", resp.Status, respBody)
	}
	if !env.Success {
		return fmt.Errorf("status %s: %s", resp.Status, env.Message)
	}
	if out != nil && env.Data != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}
