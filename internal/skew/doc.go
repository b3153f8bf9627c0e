// Package skew estimates the rotation angle that best deskews scanned or
// photographed document content.
//
// The estimator builds a dark-pixel map of the image and sweeps candidate
// angles, projecting the pixels onto rotated rows. Text and line content
// concentrates into few rows when the candidate angle cancels the skew, so
// the candidate maximizing the projection energy wins. The result is the
// angle to feed to transform.Rotate, satisfying the transform.AngleEstimator
// interface.
//
// Estimation is read-only and deterministic; the same image always yields
// the same angle.
package skew
