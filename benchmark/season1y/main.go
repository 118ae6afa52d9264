package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

// Replays one synthetic heating season (90 days, 5-minute cadence) for a
// heating zone plus a room/intake sensor pair, then times the analysis
// endpoints against the resulting store.

var httpHostPort string = "127.0.0.1:1080"
var seasonDays int = 90
var cadence time.Duration = 5 * time.Minute
var postWorkers int = 32

var zoneDevice string = "bench_Z1"
var roomDevice string = "bench_room"
var intakeDevice string = "bench_intake"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

type reading struct {
	deviceID    string
	timestamp   time.Time
	temperature float64
}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	readings := generateSeason()
	fmt.Printf("generated %v readings over %v days\n", len(readings), seasonDays)

	startTime := time.Now()
	queue := make(chan reading)
	wg := sync.WaitGroup{}
	for range postWorkers {
		wg.Add(1)
		go func() {
			for r := range queue {
				postReading(r)
			}
			wg.Done()
		}()
	}
	for i, r := range readings {
		queue <- r
		if i%1000 == 0 {
			fmt.Printf("\rposted %v/%v readings", i, len(readings))
		}
	}
	close(queue)
	wg.Wait()
	usedTime := time.Since(startTime)

	fmt.Printf(
		"\rposted %v readings: used time=%v seconds, throughput=%v reading/second\n",
		len(readings), usedTime.Seconds(), float64(len(readings))/usedTime.Seconds(),
	)

	timeGet("intervals", fmt.Sprintf("http://%s/devices/%s/intervals", httpHostPort, zoneDevice))
	timeGet("cycles", fmt.Sprintf("http://%s/devices/%s/cycles", httpHostPort, zoneDevice))
	timeGet("cycle summary", fmt.Sprintf("http://%s/devices/%s/cycles/summary", httpHostPort, zoneDevice))
	timeGet("ventilation", fmt.Sprintf(
		"http://%s/analysis/ventilation?internal_device=%s&external_device=%s",
		httpHostPort, roomDevice, intakeDevice))
	timeGet("daily", fmt.Sprintf(
		"http://%s/analysis/daily?zone_device=%s&internal_device=%s&external_device=%s",
		httpHostPort, zoneDevice, roomDevice, intakeDevice))
}

func generateSeason() []reading {
	seasonStart := time.Date(2024, 11, 1, 0, 0, 0, 0, time.Local)
	perDay := int(24 * time.Hour / cadence)

	readings := make([]reading, 0, 3*seasonDays*perDay)
	for day := range seasonDays {
		dayStart := seasonStart.AddDate(0, 0, day)
		for i := range perDay {
			at := dayStart.Add(time.Duration(i) * cadence)
			hour := at.Sub(dayStart).Hours()

			readings = append(readings,
				reading{zoneDevice, at, zoneTemperature(hour)},
				reading{roomDevice, at, 21.0 + noise(0.3)},
				reading{intakeDevice, at, outdoorTemperature(day, hour)},
			)
		}
	}
	return readings
}

// zoneTemperature ramps the radiator circuit up twice a day, morning and
// evening, over a settled baseline.
func zoneTemperature(hour float64) float64 {
	base := 19.0 + noise(0.2)
	if hour >= 6 && hour < 7.5 {
		return base + 9.0 + noise(0.5)
	}
	if hour >= 18 && hour < 20 {
		return base + 8.0 + noise(0.5)
	}
	return base
}

func outdoorTemperature(day int, hour float64) float64 {
	seasonal := 8.0 - 10.0*math.Sin(float64(day)/float64(seasonDays)*math.Pi)
	diurnal := 3.0 * math.Sin((hour-9)/24*2*math.Pi)
	return seasonal + diurnal + noise(0.5)
}

func noise(scale float64) float64 {
	return (rnd.Float64()*2 - 1) * scale
}

func postReading(r reading) {
	payload := map[string]any{
		"timestamp":   r.timestamp.Format(time.RFC3339),
		"temperature": r.temperature,
		"humidity":    45.0 + noise(5.0),
		"battery_mv":  2900,
	}

	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(
		fmt.Sprintf("http://%s/devices/%s/readings", httpHostPort, r.deviceID),
		"application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
	}
}

func timeGet(name, url string) {
	startTime := time.Now()
	resp, err := http.Get(url)
	if err != nil {
		log.Fatalf("%s request failed: %v", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("%s request status code != 200: %v", name, resp.StatusCode)
	}
	fmt.Printf("%s: used time=%v seconds\n", name, time.Since(startTime).Seconds())
}
