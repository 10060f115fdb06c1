package journal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJournal(t *testing.T) *Journal {
	t.Helper()
	return NewStore(t.TempDir()).ForDevice(363)
}

func TestStoreReturnsSameJournalPerDevice(t *testing.T) {
	s := NewStore(t.TempDir())
	assert.Same(t, s.ForDevice(363), s.ForDevice(363))
	assert.NotSame(t, s.ForDevice(363), s.ForDevice(364))
}

func TestJournalPathNaming(t *testing.T) {
	dir := t.TempDir()
	j := NewStore(dir).ForDevice(363)
	assert.Equal(t, filepath.Join(dir, "evolutionActiveMsgs.363.json"), j.Path())
}

func TestAppendAndReadAll(t *testing.T) {
	j := testJournal(t)

	require.NoError(t, j.Append(`{"signseqnum":0,"dbb_rec_dtsec":"100","recno_zx":"345","msgtext":"a"}`))
	require.NoError(t, j.Append(`{"signseqnum":1,"dbb_rec_dtsec":"101","recno_zx":"350","msgtext":"b"}`))

	lines, err := j.ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"recno_zx":"345"`)
	assert.Contains(t, lines[1], `"recno_zx":"350"`)
}

func TestAppendDeduplicatesIgnoringVolatileFields(t *testing.T) {
	j := testJournal(t)

	require.NoError(t, j.Append(`{"signseqnum":0,"dbb_rec_dtsec":"100","recno_zx":"345","msgtext":"a"}`))
	// Same message re-issued with a new slot and launch time: no new line.
	require.NoError(t, j.Append(`{"signseqnum":3,"dbb_rec_dtsec":"200","recno_zx":"345","msgtext":"a"}`))
	// Different text is a different message.
	require.NoError(t, j.Append(`{"signseqnum":0,"dbb_rec_dtsec":"100","recno_zx":"345","msgtext":"b"}`))

	lines, err := j.ReadAll()
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestAppendRejectsInvalidJSON(t *testing.T) {
	j := testJournal(t)
	assert.Error(t, j.Append("not json"))
}

func TestRemoveByRecno(t *testing.T) {
	j := testJournal(t)

	require.NoError(t, j.Append(`{"signseqnum":0,"dbb_rec_dtsec":"100","recno_zx":"345","msgtext":"a"}`))
	require.NoError(t, j.Append(`{"signseqnum":1,"dbb_rec_dtsec":"101","recno_zx":"350","msgtext":"b"}`))

	require.NoError(t, j.RemoveByRecno(345))

	lines, err := j.ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"recno_zx":"350"`)

	// No temp file left behind.
	_, err = os.Stat(j.Path() + ".out")
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveByRecnoMissingFile(t *testing.T) {
	j := testJournal(t)
	assert.NoError(t, j.RemoveByRecno(345))
}

func TestDelete(t *testing.T) {
	j := testJournal(t)
	require.NoError(t, j.Append(`{"signseqnum":0,"dbb_rec_dtsec":"100","recno_zx":"345","msgtext":"a"}`))

	require.NoError(t, j.Delete())

	lines, err := j.ReadAll()
	require.NoError(t, err)
	assert.Nil(t, lines)

	// Deleting again is not an error.
	assert.NoError(t, j.Delete())
}

func TestReadAllMissingFile(t *testing.T) {
	j := testJournal(t)
	lines, err := j.ReadAll()
	require.NoError(t, err)
	assert.Nil(t, lines)
}

func TestRecnos(t *testing.T) {
	j := testJournal(t)
	require.NoError(t, j.Append(`{"signseqnum":0,"dbb_rec_dtsec":"100","recno_zx":"345","msgtext":"a"}`))
	require.NoError(t, j.Append(`{"signseqnum":1,"dbb_rec_dtsec":"101","recno_zx":"350","msgtext":"b"}`))

	got, err := j.Recnos()
	require.NoError(t, err)
	assert.Equal(t, []string{"345", "350"}, got)
}
