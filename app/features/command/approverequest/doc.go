// Package approverequest implements the Approve Borrow Request use case.
//
// Approval is the only way a Loan comes into existence. Within one transaction the request is
// marked approved, a loan due in 30 days is created and one copy leaves the shelf.
// Approving an already approved request returns the loan of the first approval.
package approverequest
