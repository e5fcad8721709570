package pace

import (
	"bufio"
	"io"
	"strconv"
)

// WriteOrdering prints one vertex id per line, ASCII decimal,
// newline-terminated, with no trailing blank line.
func WriteOrdering(w io.Writer, ordering []int) error {
	bw := bufio.NewWriter(w)
	for _, v := range ordering {
		if _, err := bw.WriteString(strconv.Itoa(v)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
