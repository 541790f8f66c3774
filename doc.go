/*
Package tokcmp compares two natural language texts on the level of tagged
tokens. Both texts are first run through an Annotator that splits them into
lower-cased words and assigns each word a part-of-speech tag, e.g.

	the/DET quick/ADJ brown/ADJ fox/NOUN jumps/VERB over/ADP the/DET lazy/ADJ dog/NOUN

The comparison then reports three things.

# Shared Patterns

A pattern is a run of consecutive tokens that occurs in both texts with the
same words and the same tags. With the second text

	a/DET brown/ADJ fox/NOUN quickly/ADV jumps/VERB over/ADP the/DET lazy/ADJ canine/NOUN

the runs "brown fox" and "jumps over the lazy" are shared. Every part of a
shared run is shared too, e.g. "the lazy" or "fox". Those are dropped when
they are a substring of a longer shared run that is already accepted. This
is done strictly by text: a short run is also dropped if it happens to be a
part of a longer run's word, e.g. "he" is dropped when "the lazy dog" is
accepted.

If a run occurs more than once in one text with different tags, the tags of
its last occurrence count. The minimum length of a pattern can be set with
Matcher.MinLength.

# Tag Discrepancies

A word that occurs in both texts but does not carry exactly the same set of
tags is reported with each pair of tags that makes the difference. If "run"
is tagged VERB and NOUN in the first text and only VERB in the second one, the
discrepancy reported is ("run", NOUN, VERB).

# Phrase Analysis

The longest shared pattern is parsed by the annotator and broken into noun,
verb, adjective and adverb phrases by ClassifyPhrases. This is a best-effort
heuristic on top of the dependency parse.

# Report

WriteReport renders all three results into a fixed plain text format. The
Analyzer ties all steps together.
*/
package tokcmp
