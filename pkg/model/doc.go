// Package model defines the database models for LabelForge.
//
// This package contains GORM models that map to the LabelForge PostgreSQL
// schema. Ownership runs Project -> Image -> Annotation and
// Project -> Label; deleting a parent cascades to its children.
//
// # Core Models
//
//   - Principal: authenticated actors with a global role
//   - Credential: password hashes for principals
//   - Project: top-level annotation projects, owned by their creator
//   - ProjectMembership: delegated access bookkeeping (not an authorization input)
//   - Label: named annotation classes within a project
//   - Image: uploaded images within a project
//   - Annotation: drawn annotations on images, with tri-state review approval
package model
