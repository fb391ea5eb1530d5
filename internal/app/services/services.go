package services

// Services defined in this package:
// - AuthService: login and token issuance
// - EventService: event submission, moderation and analytics
// - RegistrationService: admission checks, status transitions, block status
// - TeamService: team registrations
// - SummaryService: proof-of-participation submissions and moderation
// - StudentService: student profile lookups
