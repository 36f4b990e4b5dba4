package pitest

import (
	"context"
	"strings"
	"testing"

	"github.com/Pfoerd/pitest/bytecode"
	"github.com/Pfoerd/pitest/history"
	"github.com/Pfoerd/pitest/listing"
	"github.com/stretchr/testify/require"
)

func parseListing(t *testing.T, source string) ([]*bytecode.Class, error) {
	t.Helper()
	return listing.Parse(context.Background(), strings.NewReader(source))
}

// Output of javap -c -l for a class compiled by javac whose first
// method uses try-with-resources. The generated close block begins at
// offset 38 and is attributed to line 9.
const widgetListing = `Compiled from "Widget.java"
public class com.example.Widget {
  public com.example.Widget();
    Code:
       0: aload_0
       1: invokespecial #1                  // Method java/lang/Object."<init>":()V
       4: return
    LineNumberTable:
      line 5: 0

  public int first(java.lang.String) throws java.lang.Exception;
    Code:
       0: new           #2                  // class java/io/FileReader
       3: dup
       4: aload_1
       5: invokespecial #3                  // Method java/io/FileReader."<init>":(Ljava/lang/String;)V
       8: astore_2
       9: aconst_null
      10: astore_3
      11: aload_2
      12: invokevirtual #4                  // Method java/io/FileReader.read:()I
      15: istore        4
      17: aload_2
      18: ifnull        27
      21: aload_2
      22: invokevirtual #5                  // Method java/io/FileReader.close:()V
      27: iload         4
      29: ireturn
      30: astore        4
      32: aload         4
      34: astore_3
      35: aload         4
      37: athrow
      38: astore        5
      40: aload_2
      41: ifnull        70
      44: aload_3
      45: ifnull        66
      48: aload_2
      49: invokevirtual #5                  // Method java/io/FileReader.close:()V
      52: goto          70
      55: astore        6
      57: aload_3
      58: aload         6
      60: invokevirtual #7                  // Method java/lang/Throwable.addSuppressed:(Ljava/lang/Throwable;)V
      63: goto          70
      66: aload_2
      67: invokevirtual #5                  // Method java/io/FileReader.close:()V
      70: aload         5
      72: athrow
    LineNumberTable:
      line 7: 0
      line 8: 11
      line 9: 38
}
`

func TestScan(t *testing.T) {
	rep, err := Scan(context.Background(), widgetListing, WithFilename("Widget.javap"))
	require.NoError(t, err)

	require.Equal(t, "Widget.javap", rep.Source)
	require.NotEmpty(t, rep.ID)
	require.Equal(t, 1, rep.ScannedClasses)
	require.Equal(t, 2, rep.ScannedMethods)
	require.True(t, rep.HasFindings())

	require.Len(t, rep.Classes, 1)
	class := rep.Classes[0]
	require.Equal(t, "com.example.Widget", class.Name)
	require.Equal(t, "Widget.java", class.SourceFile)
	require.Len(t, class.Methods, 1)

	method := class.Methods[0]
	require.Equal(t, "first", method.Name)
	require.NotEmpty(t, method.Fingerprint)
	require.Equal(t, []int{9}, method.Lines)
	require.Equal(t, []int{9}, class.Lines())
}

func TestScanMethod(t *testing.T) {
	classes, err := parseListing(t, widgetListing)
	require.NoError(t, err)

	require.Empty(t, ScanMethod(classes[0].MethodAt(0)))
	require.Equal(t, []int{9}, ScanMethod(classes[0].MethodAt(1)))
}

func TestScanWithHistory(t *testing.T) {
	ctx := context.Background()
	store := history.NewMemory()

	rep, err := Scan(ctx, widgetListing, WithHistory(store))
	require.NoError(t, err)
	require.Equal(t, []int{9}, rep.Classes[0].Methods[0].Lines)

	// Both scanned methods are now stored.
	require.Equal(t, 2, store.Len())

	// Replace the stored lines while keeping the fingerprint. A second
	// scan must reuse the stored result rather than scanning again.
	classes, err := parseListing(t, widgetListing)
	require.NoError(t, err)
	first := classes[0].MethodAt(1)
	require.NoError(t, store.Put(ctx, history.Entry{
		FullName:    first.FullName(),
		Fingerprint: first.Fingerprint(),
		Lines:       []int{123},
	}))

	rep, err = Scan(ctx, widgetListing, WithHistory(store))
	require.NoError(t, err)
	require.Equal(t, []int{123}, rep.Classes[0].Methods[0].Lines)
}

func TestScanParseError(t *testing.T) {
	rep, err := Scan(context.Background(), "public class Broken {\n  void run();\n    Code:\n       0: zork\n}\n")
	require.Error(t, err)
	require.Nil(t, rep)
}

func TestScanEmptyListing(t *testing.T) {
	rep, err := Scan(context.Background(), "")
	require.NoError(t, err)
	require.Zero(t, rep.ScannedClasses)
	require.Zero(t, rep.ScannedMethods)
	require.False(t, rep.HasFindings())
}

func TestScanCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := Scan(ctx, widgetListing)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, rep)
}
