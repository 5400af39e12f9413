// Package denyrequest implements the Deny Borrow Request use case.
// A denied request is deleted, approved requests are history and cannot be denied.
package denyrequest
