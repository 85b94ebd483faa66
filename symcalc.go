/*
Package symcalc is an arbitrary precision complex calculator that isolates an unknown in an
equation and solves it in closed form.

The repository is organized as follows:

  - token: the token vocabulary shared by every stage.
  - parser: source text to token streams, with user variables and functions.
  - eval: reduction of constant token streams to complex values or vectors.
  - roots: closed form roots of polynomials up to degree four and roots of unity.
  - cas: rational polynomial arithmetic, compilation of token streams into polynomials,
    root extraction and isolation of the unknown.
  - config: layered configuration of the command line tool.
  - cmd/symcalc: the command line tool.
*/
package symcalc
