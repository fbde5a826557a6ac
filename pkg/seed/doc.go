// Package seed bootstraps an rbacstore.Provider from a YAML manifest.
//
// A manifest declares roles and permissions by system name and grants that link
// them:
//
//	roles:
//	  - system_name: admin
//	    display_name: Administrator
//	permissions:
//	  - system_name: users.write
//	    display_name: Write users
//	grants:
//	  - role: admin
//	    permission: users.write
//
// LoadFile or Parse decode and validate the manifest; Apply creates the entities
// through the provider and returns them keyed by system name.
package seed
