// Package breeze provides a client for interacting with the BreezeChMS API.
//
// Breeze is a hosted church-management system; every tenant gets an HTTPS
// subdomain under breezechms.com and a static API key. This package wraps
// its REST endpoints (people, tags, events, attendance, giving, funds,
// pledges) behind typed methods.
//
// # Usage
//
// Create a client with your tenant URL and API key:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := breeze.NewClient(
//		"https://mychurch.breezechms.com",
//		"your-api-key",
//		logger,
//		breeze.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	people, err := client.ListPeople(ctx, breeze.PeopleOptions{Limit: 50})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Every call performs at most one HTTP GET and holds no state between
// calls. With WithDryRun(true) no request is made at all and every method
// returns an empty successful result, which is useful for testing
// integration code without side effects.
//
// # Error Handling
//
// The package reports three kinds of failure:
//
//   - ErrInvalidConfig: bad base URL or missing API key, at construction
//   - ErrInvalidArgument: missing or out-of-set method arguments, raised
//     before any request is sent
//   - APIError: transport failures, unexpected status codes, undecodable
//     bodies, and payloads carrying the API's error/errorCode keys
//
// API errors include helper methods for classification:
//
//	var apiErr *breeze.APIError
//	if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
//		// handle bad API key
//	}
package breeze
