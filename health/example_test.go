package health_test

import (
	"fmt"
	"time"

	"github.com/jonwraymond/pulse/collect"
	"github.com/jonwraymond/pulse/health"
)

func ExampleClassifier_Classify() {
	c := collect.NewCollector()
	now := time.Now()

	// Eight successes and two server errors: a 20% error rate.
	for i := 0; i < 10; i++ {
		status := 200
		if i >= 8 {
			status = 500
		}
		c.AddRequest(collect.RequestSample{
			Endpoint:   "/api/test",
			Method:     "GET",
			StatusCode: status,
			Elapsed:    100 * time.Millisecond,
			ObservedAt: now,
		})
	}

	report := health.NewClassifier(c).Classify(now)

	fmt.Println("Status:", report.Status)
	fmt.Println("Issues:", len(report.Issues))
	// Output:
	// Status: degraded
	// Issues: 1
}

func ExampleClassifier_Classify_healthy() {
	c := collect.NewCollector()

	report := health.NewClassifier(c).Classify(time.Now())

	fmt.Println("Status:", report.Status)
	fmt.Println("Issues:", len(report.Issues))
	// Output:
	// Status: healthy
	// Issues: 0
}
