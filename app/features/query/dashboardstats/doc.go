// Package dashboardstats implements the Dashboard Stats query use case.
//
// Outstanding fines are the sum of the projected fines of all unreturned loans. Fines already
// settled on return are not outstanding anymore.
package dashboardstats
