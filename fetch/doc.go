// Package fetch is a small JSON HTTP client addressing named endpoints.
//
// Endpoints are given as a structure whose leaves are path templates, for
// example
//
//	users:
//	  list: /users
//	  get: /users/:id
//	  posts: /users/{id}/posts
//
// and are named by their flattened paths, here users.list, users.get and
// users.posts.  Template segments of the form :name or {name} are
// replaced with path escaped parameters.
package fetch
