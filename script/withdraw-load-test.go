package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Account is a portal user the load is driven through
type Account struct {
	Username string
	Password string
	Client   *http.Client
}

// TestResult contains metrics for a single request
type TestResult struct {
	Outcome      string
	ResponseTime time.Duration
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests     int
	Outcomes          map[string]int
	TotalTime         time.Duration
	MinResponseTime   time.Duration
	MaxResponseTime   time.Duration
	TotalResponseTime time.Duration
	ResponseTimes     []time.Duration
	ErrorCounts       map[string]int
	UserStats         map[string]int
	ScenarioStats     map[string]int
	Lock              sync.Mutex
}

// WithdrawalScenario defines a withdrawal form submission
type WithdrawalScenario struct {
	Name   string
	Amount string
	Method string
}

// Outcomes of a withdrawal submission
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of withdrawal requests to submit")
	accountsStr := flag.String("u", "alice:secret,bob:secret", "Comma-separated username:password pairs")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the portal")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	register := flag.Bool("register", false, "Register the accounts before logging in")
	flag.Parse()

	accounts, err := parseAccounts(*accountsStr)
	if err != nil {
		fmt.Printf("Invalid accounts: %v\n", err)
		return
	}

	for _, account := range accounts {
		if *register {
			if err := submit(account, *baseURL+"/register", url.Values{
				"username": {account.Username},
				"password": {account.Password},
			}, ""); err != nil {
				fmt.Printf("Register %s: %v\n", account.Username, err)
			}
		}
		if err := submit(account, *baseURL+"/login", url.Values{
			"username": {account.Username},
			"password": {account.Password},
		}, "/dashboard"); err != nil {
			fmt.Printf("Login %s failed: %v\n", account.Username, err)
			return
		}
	}

	scenarios := []WithdrawalScenario{
		{"Small Bank", "5.00", "bank"},
		{"Medium Bank", "25.50", "bank"},
		{"Large PayPal", "120.00", "paypal"},
		{"Fractional", "0.01", "paypal"},
		{"Oversized", "1000000.00", "bank"},
	}

	fmt.Printf("Load testing %s across %d accounts\n", *baseURL, len(accounts))
	fmt.Printf("Withdrawal scenarios: %d\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		Outcomes:        make(map[string]int),
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		UserStats:       make(map[string]int),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, accounts, scenarios, jobs, results, stats)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	var collected sync.WaitGroup
	collected.Add(1)
	go func() {
		defer collected.Done()
		for result := range results {
			stats.Lock.Lock()
			stats.Outcomes[result.Outcome]++
			if result.Error != nil {
				stats.ErrorCounts[result.Error.Error()]++
			}
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime
			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := len(stats.ResponseTimes)
			stats.Lock.Unlock()
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
		}
	}()

	wg.Wait()
	close(results)
	collected.Wait()
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func parseAccounts(raw string) ([]*Account, error) {
	var accounts []*Account
	for _, pair := range strings.Split(raw, ",") {
		username, password, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || username == "" {
			return nil, fmt.Errorf("malformed account %q", pair)
		}

		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, &Account{
			Username: username,
			Password: password,
			Client: &http.Client{
				Timeout: 10 * time.Second,
				Jar:     jar,
				CheckRedirect: func(*http.Request, []*http.Request) error {
					return http.ErrUseLastResponse
				},
			},
		})
	}
	if len(accounts) == 0 {
		return nil, errors.New("no accounts given")
	}
	return accounts, nil
}

// submit posts a form and, when wantPrefix is set, expects a redirect to it
func submit(account *Account, target string, form url.Values, wantPrefix string) error {
	resp, err := account.Client.PostForm(target, form)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if wantPrefix == "" {
		return nil
	}
	if resp.StatusCode != http.StatusFound || !strings.HasPrefix(resp.Header.Get("Location"), wantPrefix) {
		return fmt.Errorf("HTTP status code %d, location %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	return nil
}

func worker(baseURL string, delayMs int, accounts []*Account, scenarios []WithdrawalScenario,
	jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		account := accounts[rand.Intn(len(accounts))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		stats.Lock.Lock()
		stats.UserStats[account.Username]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		form := url.Values{
			"amount":  {scenario.Amount},
			"method":  {scenario.Method},
			"details": {"load-" + uuid.NewString()},
		}

		startTime := time.Now()
		resp, err := account.Client.PostForm(baseURL+"/withdraw/confirm", form)
		result := TestResult{ResponseTime: time.Since(startTime)}

		switch {
		case err != nil:
			result.Outcome = OutcomeFailed
			result.Error = err
		case resp.StatusCode == http.StatusFound && strings.HasPrefix(resp.Header.Get("Location"), "/invoice/"):
			result.Outcome = OutcomeAccepted
		case resp.StatusCode == http.StatusOK:
			// the form re-rendered with a validation or balance message
			result.Outcome = OutcomeRejected
		default:
			result.Outcome = OutcomeFailed
			result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		}
		if resp != nil {
			resp.Body.Close()
		}

		results <- result
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	completed := len(stats.ResponseTimes)
	rps := float64(completed) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if completed > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(completed)
	}

	sortedTimes := make([]time.Duration, completed)
	copy(sortedTimes, stats.ResponseTimes)
	sort.Slice(sortedTimes, func(i, j int) bool { return sortedTimes[i] < sortedTimes[j] })

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	for _, outcome := range []string{OutcomeAccepted, OutcomeRejected, OutcomeFailed} {
		count := stats.Outcomes[outcome]
		fmt.Printf("%-20s %d (%.1f%%)\n", strings.ToUpper(outcome[:1])+outcome[1:]+":", count,
			float64(count)/float64(stats.TotalRequests)*100)
	}
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Requests/second:     %.2f\n", rps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sortedTimes, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sortedTimes, 90))
	fmt.Printf("P95 Response:        %v\n", percentile(sortedTimes, 95))
	fmt.Printf("P99 Response:        %v\n", percentile(sortedTimes, 99))

	fmt.Println("\n----------------- ACCOUNT DISTRIBUTION -----------------")
	for username, count := range stats.UserStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", username, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
