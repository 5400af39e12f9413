// Package borrowrequests implements the Borrow Requests query use case: all requests with their
// requester, newest first, for the librarian's approval queue.
package borrowrequests
