// Package equitypack tracks the use of injected equity funds during a loan
// closing and compiles the supporting evidence into a single package for the
// lender.
//
// The core functionalities include:
//   - Ledger Management: An ordered ledger of line items, each recording what
//     the funds were used for, the vendor, the amount, and whether the item is
//     fully sourced with documentation.
//   - Document Registry: Separate pools of invoice and bank statement assets,
//     loaded from local folders or registered from uploads, grouped by bank
//     account.
//   - Sourcing: Per-entry association of one invoice, any number of ordered
//     statements, and outstanding document requests. Associations reference
//     assets by name only, so a missing asset degrades to a placeholder in the
//     compiled package instead of an error.
//   - Package Compilation: The renderer subpackage turns the ledger, the
//     sourcing associations, and the document pools into one paginated PDF
//     artifact: a summary page followed by one page per attached document.
//
// This package serves as the foundational logic for the `epk` command-line
// tool. All state is held in explicit store values passed to the operations
// that need them; there are no ambient globals.
package equitypack
