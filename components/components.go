// Package components defines the ECS components of the world: the kinematic
// Body every mobile entity carries, and the Frog and Ball tags.
package components
