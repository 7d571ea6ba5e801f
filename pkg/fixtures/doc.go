// Package fixtures loads YAML seed data into the catalog.
//
// A fixture document is a list of categories, each with optional components:
//
//	- category: Backend
//	  components:
//	    - title: core
//	      description: The core service
//	    - worker
//	- category: Frontend
//
// Component entries may be a bare string (title only) or a mapping.
package fixtures
