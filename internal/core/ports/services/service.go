package services

// ServiceContainer holds instances of all the application services. It is
// the entry point for accessing service functionality from the handlers.
type ServiceContainer struct {
	Auth     AuthSvcFacade
	User     UserSvcFacade
	Currency CurrencySvcFacade
	Contact  ContactSvcFacade
}
