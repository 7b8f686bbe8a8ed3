// Package pagination slices record collections into fixed-size pages.
//
// This package contains the paging logic shared by the interactive and
// static views:
//   - PageState: current page, page size and total, with half-open bounds
//   - Meta: summary metadata for the page footer
//   - ParseSort: --sort flag parsing
package pagination
