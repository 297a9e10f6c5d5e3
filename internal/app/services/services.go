// Package services holds the business logic between controllers and
// repositories.
//
// Services defined in this package:
//   - AuthService: credential verification and session token issuance
//   - StudentService: student provisioning (record + login, transactional)
//   - ResultService: result entry with grade derivation
package services
