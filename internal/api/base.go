package api

// DefaultBaseURL is the API root used when neither config nor flags set one.
const DefaultBaseURL = "http://localhost:3000/api"
