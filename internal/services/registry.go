package services

// ServiceContainer groups every service for dependency wiring.
type ServiceContainer struct {
	AuthService AuthService
	NewsService NewsService
	JobService  JobService
}
