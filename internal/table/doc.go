// Package table renders statically dimensioned C++ function-pointer tables.
//
// A table named T over dimensions [2][4] becomes
//
//	T_fp T_table[2][4] =
//	    {
//	        {
//	            &T<0, 0>,
//	            ...
//	        },
//	        ...
//	    }
//	;
//
// where every leaf references the instantiation of T for one coordinate
// tuple. Coordinates come from package enumerate; this package only decides
// where braces open and close and how a leaf is spelled.
package table
