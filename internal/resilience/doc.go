// Package resilience provides reliability and fault tolerance patterns for the application.
// It includes a circuit breaker wrapper used to protect outbound calls such as
// notification webhooks and full-content fetches from cascading failures.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.NotifierConfig("discord"))
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callExternalService()
//	})
package resilience
